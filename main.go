package main

import "ets-backend/cmd"

func main() {
	cmd.Execute()
}
