// Command chesscore is a line-oriented console driver for the rules
// engine. It reads commands from stdin and prints the board after each
// change, which is handy for poking at positions without a frontend.
//
// Commands:
//
//	new [seed]     start over, optionally from a seed string
//	move e2e4      apply a coordinate move
//	moves e2       list legal destinations from a square
//	promote [QRBN] resolve a pending promotion
//	undo           take back the last move
//	fen            print the current seed string
//	svg <file>     write the position as an SVG image
//	quit
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chessrules/chesscore"
)

func main() {
	game := chesscore.NewGame()
	fmt.Print(game.Board().Draw())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "new":
			game = newGame(fields)
			fmt.Print(game.Board().Draw())
		case "move":
			if len(fields) < 2 {
				fmt.Println("usage: move e2e4")
				continue
			}
			status, err := game.ApplyMove(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(game.Board().Draw())
			if pending, ok := game.PendingPromotion(); ok {
				fmt.Printf("promotion pending on %s\n", pending.Square)
			}
			if status != chesscore.StatusNormal {
				fmt.Println(status)
			}
		case "moves":
			if len(fields) < 2 {
				fmt.Println("usage: moves e2")
				continue
			}
			destinations, err := game.ValidDestinations(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, sq := range destinations {
				fmt.Printf("%s ", sq)
			}
			fmt.Println()
		case "promote":
			letter := ""
			if len(fields) > 1 {
				letter = fields[1]
			}
			if err := game.Promote(letter); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(game.Board().Draw())
		case "undo":
			if err := game.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(game.Board().Draw())
		case "fen":
			fmt.Println(game.FEN())
		case "svg":
			if len(fields) < 2 {
				fmt.Println("usage: svg board.svg")
				continue
			}
			writeSVGFile(game, fields[1])
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func newGame(fields []string) *chesscore.Game {
	if len(fields) < 2 {
		return chesscore.NewGame()
	}
	seed, err := chesscore.FEN(fields[1])
	if err != nil {
		fmt.Println(err)
		return chesscore.NewGame()
	}
	return chesscore.NewGame(seed)
}

func writeSVGFile(game *chesscore.Game, path string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	game.WriteSVG(f)
}
