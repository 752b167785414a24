package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/RZeijlon/ResumeRobertZeijlon/cmd"
)

func main() {
	cmd.Execute()
}
