package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (s *session) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <title> <author> <isbn>",
		Short: "Add a book to the catalog",
		Long: `Add creates a book record. Category is Fiction or NonFiction (any case).
Quote titles and authors that contain spaces.

Example:
  add fiction Dune "Frank Herbert" 9780441013593`,
		// Titles, authors and ISBNs may start with "-".
		DisableFlagParsing: true,
		Args:               cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, title, author, isbn := args[0], args[1], args[2], args[3]
			if err := s.catalog.AddBook(category, title, author, isbn); err != nil {
				return fmt.Errorf("add book: %w", err)
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), statusResult{Status: "added", ISBN: isbn})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Book added successfully.")
			return nil
		},
	}
}

func (s *session) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <isbn>",
		Aliases: []string{"rm"},
		Short:   "Remove a book by ISBN",
		Long: `Remove deletes a book from the catalog. The recently added list and the
borrow history keep their entries for it.`,
		DisableFlagParsing: true,
		Args:               cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn := args[0]
			if err := s.catalog.RemoveBook(isbn); err != nil {
				return fmt.Errorf("remove book: %w", err)
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), statusResult{Status: "removed", ISBN: isbn})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book with ISBN %s removed.\n", isbn)
			return nil
		},
	}
}

func (s *session) newBorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <isbn>",
		Short: "Record a borrow of a book",
		Long: `Borrow appends the book to the borrow history. Books are never checked
out, so the same book may be borrowed again at any time.`,
		DisableFlagParsing: true,
		Args:               cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := s.catalog.BorrowBook(args[0])
			if err != nil {
				return fmt.Errorf("borrow book: %w", err)
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), book)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book '%s' borrowed.\n", book.Title)
			return nil
		},
	}
}

func (s *session) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <isbn-or-title>",
		Short: "Find a book by ISBN or exact title",
		Long: `Search looks for a book whose ISBN equals the key, then for one whose
title equals it exactly. Words after "search" are joined with single spaces.

Example:
  search 9780441013593
  search The Left Hand of Darkness`,
		DisableFlagParsing: true,
		Args:               cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.Join(args, " ")
			book, ok := s.catalog.SearchBook(key)
			if s.jsonOutput() {
				res := searchResult{Found: ok}
				if ok {
					res.Book = &book
				}
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Book not found!")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Found: %s by %s (ISBN: %s, %s)\n",
				book.Title, book.Author, book.ISBN, book.Category)
			return nil
		},
	}
}

func (s *session) newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show recently added books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := s.catalog.RecentlyAdded()
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			printRecent(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func (s *session) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the borrow history, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := s.catalog.BorrowHistory()
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			printHistory(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func (s *session) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all books in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := s.catalog.Books()
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), books)
			}
			printBookTable(cmd.OutOrStdout(), books)
			return nil
		},
	}
}

func (s *session) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show operation counters for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := s.metrics.Snapshot()
			if err != nil {
				return err
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), samples)
			}
			printSamples(cmd.OutOrStdout(), samples)
			return nil
		},
	}
}

func (s *session) newExitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Aliases: []string{"quit"},
		Short:   "End the session",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s.done = true
			fmt.Fprintln(cmd.OutOrStdout(), "Exiting...")
		},
	}
}
