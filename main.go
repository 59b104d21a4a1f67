package main

import "github.com/KaramelBytes/weather-summary/cmd"

func main() {
	cmd.Execute()
}
