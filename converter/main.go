package main

import "github.com/derktes/rmt-converter/converter/converter"

func main() {
	converter.Start()
}
