package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Envelope mirrors the persisted record layout enough to detect corruption
type Envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	deleteCorrupt := len(os.Args) > 1 && os.Args[1] == "--delete"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupt session records...")

	var cursor uint64
	var scanned, corrupt, deleted int
	for {
		keys, next, err := client.Scan(ctx, cursor, "planner:session:*", 100).Result()
		if err != nil {
			log.Fatal("Scan failed:", err)
		}

		for _, key := range keys {
			scanned++
			data, err := client.Get(ctx, key).Result()
			if err != nil {
				fmt.Printf("  SKIP %s: %v\n", key, err)
				continue
			}

			var envelope Envelope
			if err := json.Unmarshal([]byte(data), &envelope); err == nil && envelope.State != nil {
				continue
			}

			corrupt++
			fmt.Printf("  CORRUPT %s (%d bytes)\n", key, len(data))
			if deleteCorrupt {
				if err := client.Del(ctx, key).Err(); err != nil {
					fmt.Printf("  FAILED to delete %s: %v\n", key, err)
					continue
				}
				deleted++
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	fmt.Printf("Scanned %d records, %d corrupt, %d deleted\n", scanned, corrupt, deleted)
	if corrupt > 0 && !deleteCorrupt {
		fmt.Println("Re-run with --delete to remove corrupt records")
	}
}
