package main

import (
	"context"
	"fmt"
	"log"

	"backend/internal/app/repository"
)

func main() {
	repo := repository.New("data")
	dataset, err := repo.LoadDataset(context.Background())
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	fmt.Println("Routes in dataset:")
	for _, route := range dataset.Routes {
		content := "no content"
		if repo.HasRouteContent(route.ID) {
			content = "has content"
		}
		fmt.Printf("ID: %s, Name: %s, IHS: %s, %s\n", route.ID, route.Name, route.IHSPolicy, content)
	}
}
