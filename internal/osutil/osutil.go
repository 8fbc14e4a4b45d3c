// Package osutil holds operating system constants shared by the commands.
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

// Code returns the process exit status of c.
func (c exitCode) Code() int {
	return int(c)
}
