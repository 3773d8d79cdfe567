package main

import "github.com/sumwatshade/offcalc/cmd"

func main() {
	cmd.Execute()
}
