package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// CustomPingInterval returns a client whose HTTP/2 connections send a PING
// after interval without reads, so a dead upstream connection is noticed
// even though requests carry no overall timeout.
func CustomPingInterval(interval time.Duration) (*http.Client, error) {
	t1 := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if interval <= 0 {
		return &http.Client{Transport: t1}, nil
	}
	// make http2.Transport use proxy
	t2, err := http2.ConfigureTransports(t1)
	if err != nil {
		return nil, fmt.Errorf("configure http2: %w", err)
	}
	t2.ReadIdleTimeout = interval
	t2.PingTimeout = 15 * time.Second
	return &http.Client{
		Transport: t1,
	}, nil
}
