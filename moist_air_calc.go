package main

import "moist_air_calc/cmd"

func main() {
	cmd.Execute()
}
