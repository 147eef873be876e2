// wireping exercises the wire protocol against a live broker: it
// connects, negotiates the wire format, announces a connection, and
// round-trips keep-alive probes through the request correlator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openmq/wirekit/internal/commands"
	"github.com/openmq/wirekit/internal/correlation"
	"github.com/openmq/wirekit/internal/marshal"
	"github.com/openmq/wirekit/internal/observability"
	"github.com/openmq/wirekit/internal/transport"
)

func main() {
	configPath := flag.String("config", "cmd/wireping/config.toml", "client config path")
	host := flag.String("host", "", "override configured broker host")
	port := flag.Int("port", 0, "override configured broker port")
	count := flag.Int("count", -1, "override configured ping count")
	debug := flag.Bool("debug", false, "enable protocol tracing")
	flag.Parse()

	var logger zerolog.Logger
	if *debug {
		logger = observability.InitDebugLogger("wireping")
	} else {
		logger = observability.InitLogger("wireping")
	}

	cfg, err := loadClientConfig(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = defaultClientConfig()
		logger.Debug().Str("path", *configPath).Msg("no config file; using defaults")
	} else if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *count >= 0 {
		cfg.PingCount = *count
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "wireping-" + uuid.NewString()
	}

	if err := run(logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("wireping failed")
	}
}

func run(logger zerolog.Logger, cfg clientConfig) error {
	reg, err := marshal.ForVersion(marshal.Version1)
	if err != nil {
		return err
	}

	sock := transport.NewSocket()
	if err := sock.Create(); err != nil {
		return err
	}
	defer sock.Close()

	if err := sock.Connect(cfg.Host, cfg.Port, cfg.ConnectTimeout); err != nil {
		return fmt.Errorf("connect %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	if cfg.TrafficClass != 0 {
		if err := sock.SetOption(transport.OptTrafficClass, cfg.TrafficClass); err != nil {
			logger.Warn().Err(err).Msg("traffic class not applied")
		}
	}
	if cfg.TLS.Enabled {
		if err := sock.SecureClient(cfg.TLS, cfg.ConnectTimeout); err != nil {
			return fmt.Errorf("tls handshake: %w", err)
		}
	}
	logger.Info().
		Str("local", sock.LocalAddress()).
		Str("remote", sock.RemoteAddress()).
		Msg("connected")

	in, err := sock.InputStream()
	if err != nil {
		return err
	}
	out, err := sock.OutputStream()
	if err != nil {
		return err
	}

	corr := correlation.New()
	defer corr.Close()

	// Reader loop: every inbound record either completes a pending
	// request or is logged and dropped.
	readErr := make(chan error, 1)
	go func() {
		for {
			ds, err := reg.Unmarshal(in)
			if err != nil {
				readErr <- err
				return
			}
			cmd, ok := ds.(commands.Command)
			if !ok {
				logger.Warn().Str("record", ds.String()).Msg("standalone record ignored")
				continue
			}
			if corr.Offer(cmd) {
				continue
			}
			logger.Debug().Str("command", cmd.String()).Msg("unsolicited command")
		}
	}()

	send := func(cmd commands.Command) error {
		if err := reg.Marshal(out, cmd); err != nil {
			return err
		}
		return out.Flush()
	}
	request := func(cmd commands.Command) (commands.Command, error) {
		cmd.SetCommandID(corr.NextCommandID())
		cmd.SetResponseRequired(true)
		future, err := corr.Register(cmd.GetCommandID())
		if err != nil {
			return nil, err
		}
		if err := send(cmd); err != nil {
			return nil, err
		}
		return future.Await(cfg.RequestTimeout)
	}

	wfi := commands.NewWireFormatInfo()
	wfi.Magic = marshal.Magic()
	wfi.Version = int32(reg.Version())
	wfi.MaxInactivityDuration = cfg.KeepAlive.Milliseconds()
	if err := send(wfi); err != nil {
		return fmt.Errorf("wire format announce: %w", err)
	}

	conn := commands.NewConnectionInfo()
	conn.ConnectionID = &commands.ConnectionID{Value: cfg.ClientID}
	conn.ClientID = cfg.ClientID
	conn.UserName = cfg.UserName
	conn.Password = cfg.Password
	resp, err := request(conn)
	if err != nil {
		return fmt.Errorf("connection announce: %w", err)
	}
	if ex, ok := resp.(*commands.ExceptionResponse); ok {
		return fmt.Errorf("broker rejected connection: %s: %s", ex.ExceptionClass, ex.ExceptionMessage)
	}
	logger.Info().Str("client_id", cfg.ClientID).Msg("connection established")

	for i := 0; i < cfg.PingCount; i++ {
		start := time.Now()
		resp, err := request(commands.NewKeepAliveInfo())
		if err != nil {
			return fmt.Errorf("ping %d: %w", i+1, err)
		}
		if ex, ok := resp.(*commands.ExceptionResponse); ok {
			return fmt.Errorf("ping %d rejected: %s", i+1, ex.ExceptionMessage)
		}
		logger.Info().
			Int("seq", i+1).
			Dur("rtt", time.Since(start)).
			Msg("pong")
	}

	remove := commands.NewRemoveInfo()
	remove.ObjectID = conn.ConnectionID
	if _, err := request(remove); err != nil {
		logger.Warn().Err(err).Msg("connection removal not acknowledged")
	}

	shutdown := commands.NewShutdownInfo()
	shutdown.SetCommandID(corr.NextCommandID())
	if err := send(shutdown); err != nil {
		return fmt.Errorf("shutdown notice: %w", err)
	}
	if err := sock.ShutdownOutput(); err != nil {
		return err
	}

	// Drain until the peer closes its half so the shutdown is orderly.
	select {
	case err := <-readErr:
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, marshal.ErrIncomplete) {
			return err
		}
	case <-time.After(cfg.RequestTimeout):
		logger.Warn().Msg("peer did not close; abandoning drain")
	}
	logger.Info().Msg("done")
	return nil
}
