package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mbelyaev/taskkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	session, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			fmt.Println("Email already exists")
			return
		}
		fmt.Println(err.Error())
		return
	}

	a.userName = session.User.Email
	fmt.Println("Registered and logged in as", a.userName)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	session, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid credentials")
			return
		}
		fmt.Println(err.Error())
		return
	}

	a.userName = session.User.Email
	fmt.Println("Logged in as", a.userName)
}

func (a *App) Profile(ctx context.Context) {

	account, err := a.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Println("Not logged in")
			return
		}
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Name: %s\nEmail: %s\nRegistered: %s\n",
		account.Name, account.Email, account.CreatedAt.Format("2006-01-02"))
}

func (a *App) Logout() {
	a.api.SetToken("")
	a.userName = ""
	fmt.Println("Logged out")
}
