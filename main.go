package main

import "github.com/bgraf/gpxseg/cmd"

func main() {
	cmd.Execute()
}
