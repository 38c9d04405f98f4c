package main

import "github.com/aokumura/commitlens/cmd"

func main() {
	cmd.Execute()
}
