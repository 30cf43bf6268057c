package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronov/codenames-tui/internal/protocol"
	"github.com/avoronov/codenames-tui/internal/storage"
)

var flagRoomsLimit int

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Show bookmarked and recently visited rooms",
	Long: `Shows rooms saved in the local bookmark database, most recently
joined first, followed by recent visit history.

Run 'codenames play --last' to rejoin the top bookmark.`,
	Run: runRooms,
}

func init() {
	roomsCmd.Flags().IntVar(&flagRoomsLimit, "limit", 10, "Maximum entries to show per section")
}

func runRooms(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	bookmarks, err := store.Bookmarks(flagRoomsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading bookmarks: %v\n", err)
		os.Exit(1)
	}

	if len(bookmarks) == 0 {
		fmt.Println("No bookmarked rooms yet. Join a room to create one.")
	} else {
		fmt.Println("Bookmarked rooms:")
		fmt.Println()
		for _, b := range bookmarks {
			frag := protocol.RoomFragment{Room: b.Room, Password: b.Password}
			fmt.Printf("  %-20s as %-16s last joined %s\n",
				b.Room, b.Nickname, b.LastJoined.Format("2006-01-02 15:04"))
			fmt.Printf("    codenames play --room %q\n", frag.String())
		}
	}

	visits, err := store.RecentVisits(flagRoomsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading visits: %v\n", err)
		os.Exit(1)
	}
	if len(visits) > 0 {
		fmt.Println()
		fmt.Println("Recent visits:")
		fmt.Println()
		for _, v := range visits {
			fmt.Printf("  %-20s as %-16s %s\n",
				v.Room, v.Nickname, v.JoinedAt.Format("2006-01-02 15:04"))
		}
	}
}
