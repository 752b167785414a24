package utils

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes the sitemap for the page plus its navigable
// section anchors into outputDir.
func GenerateSitemaps(origin string, sectionIDs []string, outputDir string) error {
	xmlOutput, err := GenerateSitemapContent(origin, sectionIDs)
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(filepath.Join(outputDir, "sitemap.xml"))
	if err != nil {
		return err
	}
	defer xmlFile.Close()

	xmlFile.Write([]byte(xml.Header))
	xmlFile.Write([]byte(xmlOutput))

	return nil
}

// GenerateSitemapContent lists the root page and one anchor URL per
// navigable section.
func GenerateSitemapContent(origin string, sectionIDs []string) (string, error) {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	lastMod := time.Now().Format("2006-01-02")
	sitemap.Urls = append(sitemap.Urls, Url{
		Loc:     origin + "/",
		LastMod: lastMod,
	})

	for _, id := range sectionIDs {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     fmt.Sprintf("%s/#%s", origin, id),
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", err
	}

	return string(xmlOutput), nil
}
