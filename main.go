package main

import "github.com/jeremy-dai/hi-money-sub001/cmd"

func main() {
	cmd.Execute()
}
