package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TaskKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: profile, list, add <title>, rename <id> <title>, done <id>, rm <id>, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "profile":
			a.Profile(ctx)
		case "list":
			a.list(ctx)
		case "add":
			a.add(ctx, strings.Join(args, " "))
		case "rename":
			if len(args) < 2 {
				fmt.Println("Usage: rename <id> <title>")
				continue
			}
			a.rename(ctx, args[0], strings.Join(args[1:], " "))
		case "done":
			if len(args) == 0 {
				fmt.Println("Usage: done <id>")
				continue
			}
			a.done(ctx, args[0])
		case "rm":
			if len(args) == 0 {
				fmt.Println("Usage: rm <id>")
				continue
			}
			a.remove(ctx, args[0])
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
