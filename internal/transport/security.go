package transport

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

var (
	ErrTLSCertFileRequired = errors.New("transport: tls cert file required")
	ErrTLSKeyFileRequired  = errors.New("transport: tls key file required")
	ErrTLSCAFileRequired   = errors.New("transport: tls ca file required")
)

// TLSConfig describes the secure-transport material for one side.
type TLSConfig struct {
	Enabled            bool   `toml:"enabled"`
	Mutual             bool   `toml:"mutual"`
	CertFile           string `toml:"cert_file"`
	KeyFile            string `toml:"key_file"`
	CAFile             string `toml:"ca_file"`
	ServerName         string `toml:"server_name"`
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
}

func (c TLSConfig) validateClient() error {
	if strings.TrimSpace(c.CAFile) == "" && !c.InsecureSkipVerify {
		return ErrTLSCAFileRequired
	}
	if c.Mutual {
		if strings.TrimSpace(c.CertFile) == "" {
			return ErrTLSCertFileRequired
		}
		if strings.TrimSpace(c.KeyFile) == "" {
			return ErrTLSKeyFileRequired
		}
	}
	return nil
}

func (c TLSConfig) validateServer() error {
	if strings.TrimSpace(c.CertFile) == "" {
		return ErrTLSCertFileRequired
	}
	if strings.TrimSpace(c.KeyFile) == "" {
		return ErrTLSKeyFileRequired
	}
	if c.Mutual && strings.TrimSpace(c.CAFile) == "" {
		return ErrTLSCAFileRequired
	}
	return nil
}

func (c TLSConfig) clientTLSConfig(defaultServerName string) (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}

	serverName := strings.TrimSpace(c.ServerName)
	if serverName == "" {
		serverName = defaultServerName
	}
	cfg.ServerName = serverName

	if caPath := strings.TrimSpace(c.CAFile); caPath != "" {
		caPEM, err := os.ReadFile(caPath)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caPEM); !ok {
			return nil, fmt.Errorf("transport: parse tls ca bundle: %s", caPath)
		}
		cfg.RootCAs = pool
	}

	if c.Mutual {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

func (c TLSConfig) serverTLSConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, err
	}
	cfg := &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}
	if c.Mutual {
		caPEM, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caPEM); !ok {
			return nil, fmt.Errorf("transport: parse tls ca bundle: %s", c.CAFile)
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return cfg, nil
}

// SecureClient wraps a freshly connected socket in client-side TLS and
// performs the handshake within timeout. It must run before the stream
// endpoints are created.
func (s *Socket) SecureClient(cfg TLSConfig, timeout time.Duration) error {
	if err := cfg.validateClient(); err != nil {
		return err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateConnected {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.in != nil || s.out != nil {
		s.mu.Unlock()
		return ErrStreamsInUse
	}
	raw := s.tcp
	s.mu.Unlock()

	host, _, err := net.SplitHostPort(raw.RemoteAddr().String())
	if err != nil {
		return fmt.Errorf("transport: secure client: %w", err)
	}
	tlsCfg, err := cfg.clientTLSConfig(host)
	if err != nil {
		return err
	}
	conn := tls.Client(raw, tlsCfg)
	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}
	if err := conn.Handshake(); err != nil {
		return fmt.Errorf("transport: tls handshake: %w", err)
	}
	_ = conn.SetDeadline(time.Time{})

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	return nil
}

// SecureServer wraps an accepted socket in server-side TLS. It must run
// before the stream endpoints are created.
func (s *Socket) SecureServer(cfg TLSConfig, timeout time.Duration) error {
	if err := cfg.validateServer(); err != nil {
		return err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state != StateConnected {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.in != nil || s.out != nil {
		s.mu.Unlock()
		return ErrStreamsInUse
	}
	raw := s.tcp
	s.mu.Unlock()

	tlsCfg, err := cfg.serverTLSConfig()
	if err != nil {
		return err
	}
	conn := tls.Server(raw, tlsCfg)
	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}
	if err := conn.Handshake(); err != nil {
		return fmt.Errorf("transport: tls handshake: %w", err)
	}
	_ = conn.SetDeadline(time.Time{})

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	return nil
}
