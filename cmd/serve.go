package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"devserve/core/browser"
	"devserve/core/config"
	"devserve/core/loader"
	"devserve/core/logger"
	"devserve/core/server"
	"devserve/core/storage"
	"devserve/feature/static"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// flagValues are command-line overrides. They win over .env and environment.
type flagValues struct {
	port      int
	host      string
	dir       string
	noBrowser bool
}

var serveFlags flagValues

func (f *flagValues) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.port, "port", "p", 8000, "Port to listen on")
	fs.StringVar(&f.host, "host", "", "Interface to bind (default all interfaces)")
	fs.StringVarP(&f.dir, "dir", "d", "", "Directory to serve (default the executable's directory)")
	fs.BoolVar(&f.noBrowser, "no-browser", false, "Do not open a browser")
}

func (f *flagValues) apply(cfg *config.Config, fs *pflag.FlagSet) {
	if fs.Changed("port") {
		cfg.Server.Port = f.port
	}
	if fs.Changed("host") {
		cfg.Server.Host = f.host
	}
	if fs.Changed("dir") {
		cfg.Server.Root = f.dir
		cfg.Server.Source = server.SourceDisk
	}
	if fs.Changed("no-browser") && f.noBrowser {
		cfg.Server.OpenBrowser = false
	}
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return server.Startup(fmt.Errorf("failed to load configuration: %w", err))
	}
	serveFlags.apply(cfg, cmd.Flags())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, cmd.OutOrStdout())
}

// run walks Starting -> Serving -> Stopped. Any failure before serving is a
// *server.StartupError; cancelling ctx is a clean stop.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := cfg.Server.Validate(); err != nil {
		return server.Startup(err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return server.Startup(fmt.Errorf("failed to initialize logger: %w", err))
	}
	defer logg.Sync()
	restore := zap.ReplaceGlobals(logg)
	defer restore()

	root, servedFrom, err := openRoot(ctx, cfg)
	if err != nil {
		return server.Startup(err)
	}

	app := server.NewApp(logg)

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(root, cfg.Server.Browse, logg))
	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return server.Startup(err)
	}

	ln, err := server.Listen(cfg.Server)
	if err != nil {
		return err
	}

	srvCfg := cfg.Server
	srvCfg.Port = server.BoundPort(ln)

	printBanner(out, srvCfg, servedFrom)
	logg.Info("Starting server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", servedFrom),
		zap.Strings("features", loaded),
	)

	if srvCfg.OpenBrowser {
		printBrowserStatus(out, srvCfg.LocalURL(), browser.Open(srvCfg.LocalURL(), logg))
	}

	if err := server.Serve(ctx, app, ln, srvCfg.ShutdownTimeout(), logg); err != nil {
		return err
	}

	printStopped(out)
	return nil
}

// openRoot returns the file system to serve and a description of where it lives.
func openRoot(ctx context.Context, cfg *config.Config) (http.FileSystem, string, error) {
	if cfg.Server.Source == server.SourceBucket {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, "", err
		}
		if err := storage.VerifyBucket(ctx, client, cfg.Storage.Bucket); err != nil {
			return nil, "", err
		}
		fsys := storage.NewFileSystem(client, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Timeout())
		return fsys, fsys.String(), nil
	}

	dir, err := server.ResolveRoot(cfg.Server.Root)
	if err != nil {
		return nil, "", err
	}
	return http.Dir(dir), dir, nil
}
