package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// FolderData is the stored shape we need to inspect and rewrite.
// Timestamps pass through untouched.
type FolderData struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	Kind      string                       `json:"kind"`
	Flags     map[string]map[string]string `json:"flags,omitempty"`
	CreatedAt json.RawMessage              `json:"created_at"`
	UpdatedAt json.RawMessage              `json:"updated_at"`
}

// Moves folder flags from an old scope name to the current module scope.
// Usage: REDIS_URL=redis://localhost:6379 go run scripts/migrate-flag-scopes.go <old-scope> <new-scope>
func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: migrate-flag-scopes <old-scope> <new-scope>")
	}
	oldScope, newScope := os.Args[1], os.Args[2]

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	keys, err := client.Keys(ctx, "folder:*").Result()
	if err != nil {
		log.Fatal("Failed to list folder keys:", err)
	}

	migrated := 0
	for _, key := range keys {
		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			log.Printf("skip %s: %v", key, err)
			continue
		}

		var folder FolderData
		if err := json.Unmarshal([]byte(raw), &folder); err != nil {
			log.Printf("skip %s: corrupted JSON: %v", key, err)
			continue
		}

		old, ok := folder.Flags[oldScope]
		if !ok {
			continue
		}

		if folder.Flags[newScope] == nil {
			folder.Flags[newScope] = make(map[string]string)
		}
		for k, v := range old {
			// Existing flags under the new scope win; originalName is
			// write-once and must not be clobbered by the migration.
			if _, exists := folder.Flags[newScope][k]; !exists {
				folder.Flags[newScope][k] = v
			}
		}
		delete(folder.Flags, oldScope)

		data, err := json.Marshal(folder)
		if err != nil {
			log.Printf("skip %s: %v", key, err)
			continue
		}
		if err := client.Set(ctx, key, data, 0).Err(); err != nil {
			log.Fatal("Failed to write ", key, ": ", err)
		}

		migrated++
		fmt.Printf("migrated %s (%s)\n", key, folder.Name)
	}

	fmt.Printf("done: %d of %d folders migrated\n", migrated, len(keys))
}
