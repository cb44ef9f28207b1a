package main

import "task-matrix-system.com/task-matrix/cmd"

func main() {
	cmd.Execute()
}
