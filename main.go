package main

import "github.com/mserradell/clinica_backend/cmd"

func main() {
	cmd.Execute()
}
