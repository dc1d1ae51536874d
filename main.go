package main

import "github.com/sekolahapp/attendance-management/cmd"

func main() {
	cmd.Execute()
}
