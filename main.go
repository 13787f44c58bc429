// Copyright © 2026 The kconf authors

package main

import "github.com/kbuildtools/kconf/cmd"

func main() {
	cmd.Execute()
}
