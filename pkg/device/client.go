// Package device provides the SSH transport to Cisco IOS switches. It has
// no knowledge of what the commands mean: callers feed it show commands
// and configuration directives and get raw text back.
package device

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/macshift-net/macshift/pkg/util"
)

// Algorithms offered to the device. Modern entries first, then the legacy
// ones old Catalyst gear requires. Setting these fields replaces the
// x/crypto defaults entirely, so both generations are listed.
var (
	offeredKeyExchanges = []string{
		"curve25519-sha256",
		"diffie-hellman-group14-sha256",
		"diffie-hellman-group-exchange-sha1",
		"diffie-hellman-group14-sha1",
		"diffie-hellman-group1-sha1",
	}
	offeredCiphers = []string{
		"aes128-ctr", "aes192-ctr", "aes256-ctr",
		"aes128-cbc", "3des-cbc", "aes192-cbc", "aes256-cbc",
	}
	offeredMACs = []string{
		"hmac-sha2-256", "hmac-sha2-512", "hmac-sha1", "hmac-md5",
	}
)

// Config holds connection parameters for one switch.
type Config struct {
	Host     string // host or host:port; port 22 assumed when absent
	Username string
	Password string
	Timeout  time.Duration // per-command read timeout, default 30s
}

// Client is an interactive SSH session to an IOS switch. IOS does not
// support exec channels on old images, so all commands run through one
// shell with paging disabled, reading until the device prompt returns.
type Client struct {
	host    string
	ssh     *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	stdout  *bufio.Reader
	timeout time.Duration
	closed  bool
}

// Dial connects, opens the shell, and disables paging.
func Dial(cfg Config) (*Client, error) {
	addr := cfg.Host
	if !strings.Contains(addr, ":") {
		addr += ":22"
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		Timeout:         15 * time.Second,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
	sshCfg.KeyExchanges = offeredKeyExchanges
	sshCfg.Ciphers = offeredCiphers
	sshCfg.MACs = offeredMACs

	conn, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", addr, err)
	}

	session, err := conn.NewSession()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("SSH session: %w", err)
	}

	if err := session.RequestPty("vt100", 80, 200, ssh.TerminalModes{}); err != nil {
		session.Close()
		conn.Close()
		return nil, fmt.Errorf("requesting pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		conn.Close()
		return nil, err
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		conn.Close()
		return nil, err
	}

	if err := session.Shell(); err != nil {
		session.Close()
		conn.Close()
		return nil, fmt.Errorf("starting shell: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		host:    cfg.Host,
		ssh:     conn,
		session: session,
		stdin:   stdin,
		stdout:  bufio.NewReader(stdout),
		timeout: timeout,
	}

	// Swallow the login banner up to the first prompt, then turn paging off.
	if _, err := c.readUntilPrompt(); err != nil {
		c.Close()
		return nil, fmt.Errorf("waiting for prompt on %s: %w", cfg.Host, err)
	}
	if _, err := c.Run("terminal length 0"); err != nil {
		c.Close()
		return nil, err
	}

	util.WithSwitch(cfg.Host).Debug("connected")
	return c, nil
}

// Run sends one command and returns its output with the echoed command and
// trailing prompt stripped.
func (c *Client) Run(cmd string) (string, error) {
	if c.closed {
		return "", util.NewCommandError(c.host, cmd, util.ErrNotConnected)
	}
	if _, err := fmt.Fprintf(c.stdin, "%s\n", cmd); err != nil {
		return "", util.NewCommandError(c.host, cmd, err)
	}
	out, err := c.readUntilPrompt()
	if err != nil {
		return "", util.NewCommandError(c.host, cmd, err)
	}
	return stripEcho(out, cmd), nil
}

// SendConfig enters configuration mode, sends each directive in order, and
// returns the combined device output. The caller decides what the
// directives are; this method only transports them.
func (c *Client) SendConfig(commands []string) (string, error) {
	var out strings.Builder

	resp, err := c.Run("configure terminal")
	if err != nil {
		return "", err
	}
	out.WriteString(resp)

	for _, cmd := range commands {
		resp, err := c.Run(cmd)
		if err != nil {
			return out.String(), err
		}
		out.WriteString(resp)
	}
	return out.String(), nil
}

// Close shuts down the shell and the SSH connection.
func (c *Client) Close() error {
	c.closed = true
	c.stdin.Close()
	c.session.Close()
	return c.ssh.Close()
}

// readUntilPrompt accumulates output until a line that looks like an IOS
// prompt (ends in "#" or ">") or the timeout elapses with no more data.
func (c *Client) readUntilPrompt() (string, error) {
	type chunk struct {
		data []byte
		err  error
	}
	chunks := make(chan chunk, 1)

	var out strings.Builder
	buf := make([]byte, 4096)

	for {
		go func() {
			n, err := c.stdout.Read(buf)
			chunks <- chunk{data: buf[:n], err: err}
		}()

		select {
		case ch := <-chunks:
			out.Write(ch.data)
			if ch.err != nil {
				if ch.err == io.EOF {
					return out.String(), nil
				}
				return out.String(), ch.err
			}
			if atPrompt(out.String()) {
				return out.String(), nil
			}
		case <-time.After(c.timeout):
			return out.String(), fmt.Errorf("timed out waiting for prompt after %s", c.timeout)
		}
	}
}

// atPrompt reports whether the output's last line is a device prompt.
func atPrompt(output string) bool {
	trimmed := strings.TrimRight(output, " \t")
	if trimmed == "" {
		return false
	}
	lines := strings.Split(trimmed, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return false
	}
	return strings.HasSuffix(last, "#") || strings.HasSuffix(last, ">")
}

// stripEcho removes the echoed command from the first line and the prompt
// from the last line of a command's output.
func stripEcho(output, cmd string) string {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 && strings.Contains(lines[0], cmd) {
		lines = lines[1:]
	}
	if len(lines) > 0 && atPrompt(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \r\n")
}
