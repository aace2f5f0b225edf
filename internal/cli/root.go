package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/iudanet/carddavsync/internal/apiclient"
	"github.com/iudanet/carddavsync/internal/config"
	"github.com/iudanet/carddavsync/internal/iocli"
	"github.com/iudanet/carddavsync/internal/server"
	"github.com/iudanet/carddavsync/internal/server/handlers"
	"github.com/iudanet/carddavsync/internal/vcf"
)

// BuildInfo version information set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type runner struct {
	io         iocli.IO
	info       BuildInfo
	configPath string
}

// NewRootCommand собирает дерево команд carddavsync
func NewRootCommand(info BuildInfo, io iocli.IO) *cobra.Command {
	r := &runner{io: io, info: info}

	root := &cobra.Command{
		Use:   "carddavsync",
		Short: "Keep a local contact cache in sync with CardDAV address books",
		Long: `carddavsync mirrors remote CardDAV address books into a local cache
and pushes local changes back to the server.

Configuration is read from carddavsync.yaml, CARDDAVSYNC_* environment
variables and command line flags, flags having the highest priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&r.configPath, "config", "", "Path to config file (default: ./carddavsync.yaml)")
	pf.String("db", "", "Path to local database")
	pf.String("driver", "", "Storage driver: sqlite or bolt")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to a rotated file instead of stderr")
	pf.Int("workers", 0, "Collections synchronized in parallel")
	pf.Bool("insecure", false, "Skip TLS certificate verification of CardDAV servers")
	pf.String("user-id", "", "Host user the commands act for")

	root.AddGroup(
		&cobra.Group{ID: "sync", Title: "Synchronization:"},
		&cobra.Group{ID: "data", Title: "Contacts:"},
		&cobra.Group{ID: "host", Title: "Host integration:"},
	)

	root.AddCommand(
		r.collectionCmd(),
		r.syncCmd(),
		r.contactsCmd(),
		r.contactCmd(),
		r.serveCmd(),
		r.tokenCmd(),
		r.keygenCmd(),
		r.versionCmd(),
	)
	return root
}

func (r *runner) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(r.configPath, cmd.Flags())
}

// withCli загружает конфигурацию, открывает хранилище на время fn
func (r *runner) withCli(cmd *cobra.Command, fn func(ctx context.Context, c *Cli) error) error {
	return r.withApp(cmd, func(ctx context.Context, a *app) error {
		return fn(ctx, New(r.io, a.manager, a.contacts, a.cfg.UserID))
	})
}

func (r *runner) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.log.Error("Failed to close storage", "error", cerr)
		}
	}()

	return fn(ctx, a)
}

func (r *runner) collectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		GroupID: "sync",
		Short:   "Manage registered CardDAV collections",
	}

	var (
		add       AddCollectionParams
		discovery Passwords
		discUser  string
	)

	addCmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Register an address book and run the first synchronization",
		Long: `Register an address book for the current user.

Password priority (highest to lowest):
  1. CARDDAVSYNC_COLLECTION_PASSWORD environment variable
  2. --password-file
  3. --password
  4. Interactive prompt when --username is set`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			add.URL = args[0]
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.AddCollection(ctx, add)
			})
		},
	}
	addCmd.Flags().StringVar(&add.Label, "label", "", "Display name (default: the URL)")
	addCmd.Flags().StringVar(&add.Username, "username", "", "HTTP Basic username")
	addCmd.Flags().StringVar(&add.Passwords.FromArgs, "password", "", "HTTP Basic password (not recommended)")
	addCmd.Flags().StringVar(&add.Passwords.FromFile, "password-file", "", "File containing the password")
	addCmd.Flags().BoolVar(&add.ReadOnly, "read-only", false, "Never write to the server")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List collections of the current user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.ListCollections(ctx)
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove <collection-id>",
		Aliases: []string{"rm"},
		Short:   "Forget a collection and drop its local cache",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.RemoveCollection(ctx, args[0])
			})
		},
	}

	discoverCmd := &cobra.Command{
		Use:   "discover <url>",
		Short: "List address books below a server or principal URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.Discover(ctx, args[0], discUser, discovery)
			})
		},
	}
	discoverCmd.Flags().StringVar(&discUser, "username", "", "HTTP Basic username")
	discoverCmd.Flags().StringVar(&discovery.FromArgs, "password", "", "HTTP Basic password (not recommended)")
	discoverCmd.Flags().StringVar(&discovery.FromFile, "password-file", "", "File containing the password")

	cmd.AddCommand(addCmd, listCmd, removeCmd, discoverCmd)
	return cmd
}

func (r *runner) syncCmd() *cobra.Command {
	var (
		all         bool
		serverURL   string
		remoteToken string
	)

	cmd := &cobra.Command{
		Use:     "sync [collection-id]",
		GroupID: "sync",
		Short:   "Synchronize collections with their servers",
		Long: `Synchronize one collection, all collections of the current user,
or with --all every registered collection (for schedulers).

With --server the pass runs inside a running 'carddavsync serve'. Use it
from schedulers while the server is up: collection locks live in the
server process.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with a collection id")
			}
			if serverURL != "" {
				if len(args) > 0 {
					return fmt.Errorf("a collection id cannot be combined with --server")
				}
				return r.remoteSync(cmd, serverURL, remoteToken, all)
			}
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				switch {
				case all:
					return c.SyncAll(ctx)
				case len(args) == 1:
					return c.Sync(ctx, args[0])
				default:
					return c.SyncUser(ctx)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Synchronize every collection of every user")
	cmd.Flags().StringVar(&serverURL, "server", "", "Run the pass on a carddavsync server, e.g. http://localhost:8080")
	cmd.Flags().StringVar(&remoteToken, "token", "", "Bearer token for --server (default: "+TokenEnv+" or issued from server.jwt_secret)")
	return cmd
}

func (r *runner) remoteSync(cmd *cobra.Command, serverURL, token string, all bool) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if token == "" {
		token = os.Getenv(TokenEnv)
	}
	if token == "" {
		if token, err = issueToken(cfg.Server.JWTSecret, cfg.UserID, all); err != nil {
			return err
		}
	}

	client := apiclient.NewClient(serverURL, token, apiclient.WithTimeout(cfg.Server.WriteTimeout))
	c := New(r.io, nil, nil, cfg.UserID)
	if all {
		return c.RemoteSync(cmd.Context(), client.Sweep)
	}
	return c.RemoteSync(cmd.Context(), client.SyncUser)
}

func (r *runner) contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		GroupID: "data",
		Short:   "Read the local contact cache",
	}

	var p SearchParams
	addPaging := func(c *cobra.Command) {
		c.Flags().StringSliceVar(&p.CollectionIDs, "collection", nil, "Restrict to collection ids (default: all)")
		c.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
		c.Flags().IntVar(&p.Offset, "offset", 0, "Page offset")
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cached contacts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.SearchContacts(ctx, p)
			})
		},
	}
	addPaging(listCmd)

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search cached contacts",
		Long: `Search cached contacts. Without --field the query matches any word
of the name, organization, notes, emails and phones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Query = args[0]
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.SearchContacts(ctx, p)
			})
		},
	}
	addPaging(searchCmd)
	searchCmd.Flags().StringSliceVar(&p.Fields, "field", nil, "Match only these fields: name, firstname, surname, email")

	showCmd := &cobra.Command{
		Use:   "show <collection-id> <local-id>",
		Short: "Print the vCard of a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			localID, err := parseLocalID(args[1])
			if err != nil {
				return err
			}
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.ShowContact(ctx, args[0], localID)
			})
		},
	}

	cmd.AddCommand(listCmd, searchCmd, showCmd)
	return cmd
}

func (r *runner) contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contact",
		GroupID: "data",
		Short:   "Create, edit and delete contacts on the server",
	}

	var (
		card vcf.Card
		file string
	)
	addCardFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&card.FullName, "fn", "", "Full name")
		c.Flags().StringVar(&card.GivenName, "given", "", "Given name")
		c.Flags().StringVar(&card.FamilyName, "family", "", "Family name")
		c.Flags().StringVar(&card.Organization, "org", "", "Organization")
		c.Flags().StringVar(&card.Note, "note", "", "Note")
		c.Flags().StringArrayVar(&card.Emails, "email", nil, "Email address (repeatable)")
		c.Flags().StringArrayVar(&card.Phones, "phone", nil, "Phone number (repeatable)")
		c.Flags().StringVar(&file, "file", "", "Use this vCard file instead of the flags")
	}

	addCmd := &cobra.Command{
		Use:   "add <collection-id>",
		Short: "Create a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.AddContact(ctx, args[0], card, file)
			})
		},
	}
	addCardFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <collection-id> <local-id>",
		Short: "Change fields of a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			localID, err := parseLocalID(args[1])
			if err != nil {
				return err
			}
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.EditContact(ctx, args[0], localID, card, file)
			})
		},
	}
	addCardFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:     "delete <collection-id> <local-id>...",
		Aliases: []string{"rm"},
		Short:   "Delete contacts",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := parseLocalID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return r.withCli(cmd, func(ctx context.Context, c *Cli) error {
				return c.DeleteContacts(ctx, args[0], ids)
			})
		},
	}

	cmd.AddCommand(addCmd, editCmd, deleteCmd)
	return cmd
}

func (r *runner) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "host",
		Short:   "Run the HTTP API for the host application",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				if a.cfg.Server.JWTSecret == "" {
					return fmt.Errorf("server.jwt_secret must be set")
				}

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				srv := server.New(server.Config{
					Addr:         a.cfg.Server.Addr,
					Version:      r.info.Version,
					JWT:          handlers.JWTConfig{Secret: []byte(a.cfg.Server.JWTSecret)},
					ReadTimeout:  a.cfg.Server.ReadTimeout,
					WriteTimeout: a.cfg.Server.WriteTimeout,
					IdleTimeout:  a.cfg.Server.IdleTimeout,
					RequestRate:  rate.Limit(a.cfg.Server.RequestRate),
					RequestBurst: a.cfg.Server.RequestBurst,
				}, a.manager, a.contacts, a.store, a.log.Logger)

				return srv.Run(ctx)
			})
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: :8080)")
	return cmd
}

func (r *runner) tokenCmd() *cobra.Command {
	var (
		ttl    time.Duration
		scopes []string
	)

	cmd := &cobra.Command{
		Use:     "token",
		GroupID: "host",
		Short:   "Issue a bearer token for the HTTP API",
		Long: `Issue a bearer token for the current user, signed with server.jwt_secret.
Use --scope scheduler for the token of the periodic sweep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := r.loadConfig(cmd)
			if err != nil {
				return err
			}
			return New(r.io, nil, nil, cfg.UserID).Token(cfg.Server.JWTSecret, ttl, scopes)
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "Scopes to grant")
	return cmd
}

func (r *runner) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen",
		GroupID: "host",
		Short:   "Generate a salt for the collection password key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return New(r.io, nil, nil, "").Keygen()
		},
	}
}

func (r *runner) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			r.io.Println("carddavsync")
			r.io.Printf("Version:    %s\n", r.info.Version)
			r.io.Printf("Build Date: %s\n", r.info.BuildDate)
			r.io.Printf("Git Commit: %s\n", r.info.GitCommit)
		},
	}
}

func parseLocalID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid local id %q", s)
	}
	return id, nil
}
