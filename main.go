package main

import "github.com/mj1618/captvty-nav/cmd"

func main() {
	cmd.Execute()
}
