// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"pj/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the PJ REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter a program; an empty line runs it.")
	repl.Start(os.Stdin, os.Stdout)
}
