package main

import "github.com/Tiliavir/work-hours-tracker/cmd"

func main() {
	cmd.Execute()
}
