package main

import "github.com/MimeLyc/bilingual-sub-muxer/internal/cli"

func main() {
	cli.Main()
}
