package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lixi-remit/lixi-landing/domain/users"
)

func runCreateUser(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	return createUser(ctx, users.NewMemoryRepository(), args, stdin, stdout)
}

func createUser(ctx context.Context, repo users.UserRepository, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: create-user <username> (password on stdin)")
	}

	password, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	user, err := repo.CreateUser(ctx, args[0], password)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "created user %q with id %d\n", user.Username, user.ID)
	return nil
}
