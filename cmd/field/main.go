// cmd/field/main.go
package main

import "go-particle-field/cmd"

func main() {
	cmd.Execute()
}
