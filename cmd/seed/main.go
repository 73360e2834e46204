package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"postboard/cmd/app"
	"postboard/internal/config"
	"postboard/internal/logger"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"
)

type seedArgs struct {
	userID      int64
	name        string
	mobile      string
	address     string
	title       string
	description string
	images      string
}

func main() {
	var args seedArgs
	flag.Int64Var(&args.userID, "user-id", 0, "existing user to attach the post to; skips user creation")
	flag.StringVar(&args.name, "name", "", "user name (required without -user-id)")
	flag.StringVar(&args.mobile, "mobile", "", "user mobile number, unique (required without -user-id)")
	flag.StringVar(&args.address, "address", "", "user address")
	flag.StringVar(&args.title, "title", "", "post title; a post is inserted when set")
	flag.StringVar(&args.description, "description", "", "post description")
	flag.StringVar(&args.images, "images", "", "comma separated image names")
	flag.Parse()

	if args.userID > 0 && args.title == "" {
		fmt.Fprintln(os.Stderr, "-user-id requires -title")
		flag.Usage()
		os.Exit(2)
	}
	if args.userID <= 0 && (args.name == "" || args.mobile == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, _, services, err := app.App(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to start application", zap.Error(err))
	}

	err = seed(context.Background(), services, args)
	db.CloseDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, services *service.Service, args seedArgs) error {
	userID := args.userID

	if userID <= 0 {
		req := repository.CreateUserRequest{Name: args.name, MobileNumber: args.mobile}
		if args.address != "" {
			req.Address = &args.address
		}

		user, err := services.User.CreateUser(ctx, req)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateMobile) {
				return fmt.Errorf("mobile number %s is already registered", args.mobile)
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}
		fmt.Printf("Inserted user %d\n", user.ID)
		userID = user.ID
	}

	if args.title == "" {
		return nil
	}

	post, err := services.Post.CreatePost(ctx, repository.CreatePostRequest{
		UserID:      userID,
		Title:       args.title,
		Description: args.description,
		Images:      models.ParseImages(args.images),
	})
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return fmt.Errorf("user %d not found", userID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}
	fmt.Printf("Inserted post %d for user %d\n", post.ID, userID)

	return nil
}
