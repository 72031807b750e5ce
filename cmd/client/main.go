package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/seliv-dev/tic-tac-toe/internal/domain"
	"github.com/seliv-dev/tic-tac-toe/pkg/utils"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "server address")
	flag.Parse()
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/game"}
	header := http.Header{}
	header.Set(domain.ClientUuidHeader, uuid.NewString())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Fatal("dial: " + err.Error())
	}
	defer func() {
		_ = conn.Close()
	}()
	client := newClient(conn)
	if err := client.handleActions(); err != nil {
		log.Fatal(err)
	}
}

type client struct {
	conn        *websocket.Conn
	scanner     *bufio.Scanner
	gameOverMsg string
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn:    conn,
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// handleActions renders every snapshot the server pushes and forwards the
// user's choices back. All rules live on the server; the client only ever
// reads the snapshot's playable mask.
func (c *client) handleActions() error {
	for {
		msg := new(domain.Message)
		if err := c.conn.ReadJSON(msg); err != nil {
			return errors.WithMessage(err, "read json msg")
		}
		switch msg.Type {
		case domain.StartSession, domain.BoardUpdate:
			done, err := c.handleSnapshot(msg)
			if err != nil {
				return errors.WithMessage(err, "handle snapshot")
			}
			if done {
				return nil
			}
		case domain.GameOver:
			v, err := utils.DecodePayload[domain.GameOverPayload](msg.Payload)
			if err != nil {
				return errors.WithMessage(err, "unmarshal game over payload")
			}
			c.gameOverMsg = v.Message
		}
	}
}

func (c *client) handleSnapshot(msg *domain.Message) (quit bool, err error) {
	v, err := utils.DecodePayload[domain.SnapshotPayload](msg.Payload)
	if err != nil {
		return false, errors.WithMessage(err, "unmarshal snapshot payload")
	}
	printBoard(v.Board)
	if c.gameOverMsg != "" {
		fmt.Println(c.gameOverMsg)
		c.gameOverMsg = ""
		return c.promptRestart()
	}
	fmt.Println(v.Status)
	return c.promptMove()
}

func (c *client) promptMove() (quit bool, err error) {
	for {
		fmt.Print("cell [1-9], r to restart, q to quit: ")
		if ok := c.scanner.Scan(); !ok {
			return true, c.scanner.Err()
		}
		input := strings.TrimSpace(c.scanner.Text())
		switch input {
		case "q":
			return true, nil
		case "r":
			return false, c.sendRestart()
		}
		cell, err := strconv.Atoi(input)
		if err != nil || cell < 1 || cell > 9 {
			continue
		}
		idx := cell - 1
		payload := domain.PlayPayload{
			Row: idx / 3,
			Col: idx % 3,
		}
		return false, c.send(domain.Message{Type: domain.PlayMove, Payload: payload})
	}
}

func (c *client) promptRestart() (quit bool, err error) {
	for {
		fmt.Print("r to play again, q to quit: ")
		if ok := c.scanner.Scan(); !ok {
			return true, c.scanner.Err()
		}
		switch strings.TrimSpace(c.scanner.Text()) {
		case "q":
			return true, nil
		case "r":
			return false, c.sendRestart()
		}
	}
}

func (c *client) sendRestart() error {
	return c.send(domain.Message{Type: domain.RestartGame})
}

func (c *client) send(msg domain.Message) error {
	if err := c.conn.WriteJSON(msg); err != nil {
		return errors.WithMessage(err, "write json msg")
	}
	return nil
}

func printBoard(board domain.Board) {
	fmt.Println()
	for i, cell := range board {
		if (i+1)%3 == 0 {
			fmt.Printf("%c\n", cell)
			if i < 6 {
				fmt.Println("——|———|——")
			}
		} else {
			fmt.Printf("%c | ", cell)
		}
	}
	fmt.Println()
}
