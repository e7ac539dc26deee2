package main

import "github.com/sadikshya-ghimire/haatbazar-jobs-backend/internal/app"

func main() {
	app.Run()
}
