package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPTransport sends through an SMTP relay with PLAIN auth (STARTTLS when offered).
type SMTPTransport struct {
	host     string
	port     int
	user     string
	pass     string
	fromName string
	send     sendFunc
}

func NewSMTPTransport(host string, port int, user, pass, fromName string) *SMTPTransport {
	return &SMTPTransport{host: host, port: port, user: user, pass: pass, fromName: fromName, send: smtp.SendMail}
}

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("context cancelled before sending email: %w", err)
	}
	id := newMessageID(t.user)
	raw, err := buildMIME(t.user, t.fromName, id, msg)
	if err != nil {
		return Receipt{}, fmt.Errorf("build mime: %w", err)
	}
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	auth := smtp.PlainAuth("", t.user, t.pass, t.host)
	if err := t.send(addr, auth, t.user, msg.To, raw); err != nil {
		return Receipt{}, err
	}
	return Receipt{MessageID: id, Transport: t.Name()}, nil
}

// GmailOAuth2Transport sends through smtp.gmail.com using XOAUTH2 with an
// access token minted from a refresh token.
type GmailOAuth2Transport struct {
	sender   string
	fromName string
	tokens   oauth2.TokenSource
	send     sendFunc
}

func NewGmailOAuth2Transport(sender, clientID, clientSecret, refreshToken, fromName string) *GmailOAuth2Transport {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     endpoints.Google,
		Scopes:       []string{"https://mail.google.com/"},
	}
	ts := cfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: refreshToken})
	return &GmailOAuth2Transport{
		sender:   sender,
		fromName: fromName,
		tokens:   oauth2.ReuseTokenSource(nil, ts),
		send:     smtp.SendMail,
	}
}

func (t *GmailOAuth2Transport) Name() string { return "gmail-oauth2" }

func (t *GmailOAuth2Transport) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	tok, err := t.tokens.Token()
	if err != nil {
		return Receipt{}, fmt.Errorf("gmail oauth2 token: %w", err)
	}
	id := newMessageID(t.sender)
	raw, err := buildMIME(t.sender, t.fromName, id, msg)
	if err != nil {
		return Receipt{}, fmt.Errorf("build mime: %w", err)
	}
	auth := &xoauth2Auth{user: t.sender, token: tok.AccessToken}
	if err := t.send("smtp.gmail.com:587", auth, t.sender, msg.To, raw); err != nil {
		return Receipt{}, err
	}
	return Receipt{MessageID: id, Transport: t.Name()}, nil
}

// xoauth2Auth implements the XOAUTH2 SASL mechanism.
type xoauth2Auth struct {
	user  string
	token string
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("xoauth2 requires an encrypted connection")
	}
	return "XOAUTH2", []byte("user=" + a.user + "\x01auth=Bearer " + a.token + "\x01\x01"), nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// The server sends a JSON error challenge; an empty reply ends the exchange.
		return []byte{}, nil
	}
	return nil, nil
}
