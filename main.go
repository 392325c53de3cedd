package main

import "github.com/dzjyyds666/deftoml/cmd"

func main() {
	cmd.Execute()
}
