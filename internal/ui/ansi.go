package ui

import (
	"fmt"
	"os"
)

func OK(msg string)   { fmt.Println(current.Success.Render(current.SymDone + " " + msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg)) }
