package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner shared by the CLI tools.
func asciiArtTpl() string {
	asciiArt := `
   _____ ____    __    _ __       __ __ _ __
  / ___// __ \  / /   (_) /____  / //_/(_) /_
  \__ \/ / / / / /   / / __/ _ \/ ,<  / / __/
 ___/ / /_/ / / /___/ / /_/  __/ /| |/ / /_
/____/\___\_\/_____/_/\__/\___/_/ |_/_/\__/
%s ` + Version + `
For more information visit https://github.com/sqlitekit/sqlitekit`

	asciiArt = asciiArt[1:]                          // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset // Add color to the ASCII art

	return asciiArt
}

// ShellVersion returns the banner of litesh.
func ShellVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}

// BenchVersion returns the banner of litebench.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
