package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/achu-1612/timedmap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := timedmap.New[string, string](ctx, timedmap.Options{
		Name:      "sessions",
		DebugLogs: true,
		Finalizer: func(k, v any) {
			fmt.Printf("%v expired (%v)\n", k, v)
		},
	}, timedmap.Record[string, string]{"admin": "root"})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	sessions.Set("alice", "token-a", timedmap.WithTimeout(timedmap.After(2*time.Second)))
	sessions.Set("bob", "token-b", timedmap.WithTimeout(timedmap.After(4*time.Second)))

	go func() {
		for range time.Tick(time.Second) {
			fmt.Println(sessions.Len(), sessions, time.Now().Format(time.TimeOnly))
		}
	}()

	// keep alice alive for a while: every read restarts her timer.
	for i := 0; i < 3; i++ {
		<-time.After(time.Second)
		sessions.Get("alice")
	}

	snapshot := sessions.Clone(timedmap.NoRefresh())

	<-time.After(5 * time.Second)

	_ = snapshot.Dump(os.Stdout)
	_ = sessions.Dump(os.Stdout)
}
