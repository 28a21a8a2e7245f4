package main

import "github.com/Ozioma45/MusicHub-sub000/cmd"

func main() {
	cmd.Execute()
}
