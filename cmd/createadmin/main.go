// Command createadmin seeds or promotes a platform admin account.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/config"
	"github.com/kztJames01/makerSpace/internal/model"
)

func main() {
	var (
		email     = flag.String("email", "", "admin email (required)")
		password  = flag.String("password", "", "admin password (required for new accounts)")
		firstName = flag.String("first-name", "Admin", "first name for a new account")
		lastName  = flag.String("last-name", "User", "last name for a new account")
	)
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	var user model.User
	err = db.Where("email = ?", *email).First(&user).Error
	switch {
	case err == nil:
		// Existing account: promote.
		if err := db.Model(&user).Update("role", "admin").Error; err != nil {
			log.Fatalf("promote user: %v", err)
		}
		fmt.Printf("promoted %s to admin\n", user.Email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		if *password == "" {
			log.Fatal("-password is required when creating a new account")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = model.User{
			FirstName: *firstName,
			LastName:  *lastName,
			Email:     *email,
			Password:  string(hash),
			Role:      "admin",
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("create admin: %v", err)
		}
		fmt.Printf("created admin %s (id=%d)\n", user.Email, user.ID)
	default:
		log.Fatalf("lookup user: %v", err)
	}
}
