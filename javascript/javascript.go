package javascript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
)

// CompileTargets bundles the client-side entry points declared in the engine
// config (the chat widget and the theme switcher) and writes hash-named
// outputs alongside external source maps. The returned map is target name to
// public script path, ready for script tags in the page shell.
func CompileTargets(targets map[string]config.JavascriptTarget) (map[string]string, error) {
	emitted := make(map[string]string, len(targets))
	for targetName, target := range targets {
		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{target.Source},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines: []api.Engine{
				{Name: api.EngineChrome, Version: "100"},
				{Name: api.EngineFirefox, Version: "100"},
				{Name: api.EngineSafari, Version: "15"},
				{Name: api.EngineEdge, Version: "100"},
			},
			Sourcemap: api.SourceMapExternal,
			Write:     false,
			Outdir:    target.OutDir,
		})

		if len(result.Errors) > 0 {
			return nil, errors.Errorf("bundling %s: %s", targetName, result.Errors[0].Text)
		}

		// Emit sources before their maps so the map can reuse the hash.
		var regularFiles []api.OutputFile
		var mapFiles []api.OutputFile
		for _, out := range result.OutputFiles {
			if strings.EqualFold(filepath.Ext(out.Path), ".map") {
				mapFiles = append(mapFiles, out)
			} else {
				regularFiles = append(regularFiles, out)
			}
		}
		sortedFiles := append(regularFiles, mapFiles...)

		srcToHash := make(map[string]string)
		for _, out := range sortedFiles {
			dir := filepath.Dir(out.Path)
			ext := out.Path[strings.Index(out.Path, "."):]
			isMap := ext == ".js.map"
			base := filepath.Base(out.Path)
			fileNameWithoutExt := base[:len(base)-len(ext)]

			var hashForFileName string
			if isMap {
				hashForFileName = srcToHash[fileNameWithoutExt]
				if hashForFileName == "" {
					return nil, errors.Errorf("source map %s can not find hash for its source file", fileNameWithoutExt)
				}
			} else {
				safeHash := strings.ReplaceAll(out.Hash, "/", "")
				srcToHash[fileNameWithoutExt] = safeHash
				hashForFileName = safeHash
			}

			name := fmt.Sprintf("%s_%s%s", fileNameWithoutExt, hashForFileName, ext)
			newPath := filepath.Join(dir, name)

			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, errors.WithStack(err)
			}

			fileContent := out.Contents
			if !isMap {
				srcMap := fmt.Sprintf("//# sourceMappingURL=%s.map", name)
				fileContent = append(append([]byte{}, out.Contents...), []byte(srcMap)...)
			}

			if err := os.WriteFile(newPath, fileContent, 0644); err != nil {
				return nil, errors.Wrapf(err, "writing %s", newPath)
			}

			if !isMap {
				emitted[targetName] = "/" + target.OutDir + "/" + name
			}
		}
	}

	return emitted, nil
}
