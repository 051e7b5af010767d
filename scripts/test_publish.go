//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PlaceInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Coordinates [2]float64 `json:"coordinates"`
}

type PlaceIngestEvent struct {
	UploadID     uuid.UUID    `json:"upload_id"`
	Filename     string       `json:"filename"`
	Batch        int          `json:"batch"`
	TotalBatches int          `json:"total_batches"`
	Places       []PlaceInput `json:"places"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовый батч (Barcelona places)
	event := PlaceIngestEvent{
		UploadID:     uuid.New(),
		Filename:     "barcelona.kml",
		Batch:        1,
		TotalBatches: 1,
		Places: []PlaceInput{
			{
				Name:        "Sagrada Familia",
				Description: "Famous basilica by Gaudi",
				Coordinates: [2]float64{2.1744, 41.4036},
			},
			{
				Name:        "Park Guell",
				Description: "Park with mosaic works by Gaudi",
				Coordinates: [2]float64{2.1527, 41.4145},
			},
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:places:ingest",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:places:ingest\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Upload ID: %s\n", event.UploadID)
	fmt.Printf("   Places: %d\n", len(event.Places))

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:places:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:places:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if uploadID, ok := response["upload_id"].(string); ok {
						if uploadID == event.UploadID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
