package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/emmaderbe/SocialApp/internal/model"
)

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ls"},
	Short:   "List posts held in the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		likedOnly, _ := cmd.Flags().GetBool("liked")
		asJSON, _ := cmd.Flags().GetBool("json")

		repo, closeStore, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeStoreLogged(closeStore)

		posts, err := repo.FetchAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("read posts: %w", err)
		}
		if likedOnly {
			posts = filterLiked(posts)
		}

		if asJSON {
			return writePostsJSON(cmd.OutOrStdout(), posts)
		}
		return writePostsTable(cmd.OutOrStdout(), posts)
	},
}

type postLine struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Liked    bool   `json:"liked"`
	HasImage bool   `json:"hasImage"`
}

func filterLiked(posts []model.Post) []model.Post {
	out := posts[:0]
	for _, p := range posts {
		if p.Liked {
			out = append(out, p)
		}
	}
	return out
}

func writePostsJSON(w io.Writer, posts []model.Post) error {
	lines := make([]postLine, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, postLine{ID: p.ID, Title: p.Title, Liked: p.Liked, HasImage: p.HasImage()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lines)
}

func writePostsTable(w io.Writer, posts []model.Post) error {
	if len(posts) == 0 {
		_, err := fmt.Fprintln(w, "no posts stored")
		return err
	}

	liked := color.New(color.FgRed).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLIKED\tIMAGE\tTITLE")
	for _, p := range posts {
		mark := faint("-")
		if p.Liked {
			mark = liked("♥")
		}
		image := faint("-")
		if p.HasImage() {
			image = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, mark, image, p.Title)
	}
	return tw.Flush()
}

func init() {
	postsCmd.Flags().Bool("liked", false, "only show liked posts")
	postsCmd.Flags().Bool("json", false, "print JSON")
}
