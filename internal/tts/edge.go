package tts

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	edgeTrustedClientToken = "6A5AA1D4EAB5EE12EE7284B7C3D78B16"
	edgeEndpoint           = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"
	edgeOutputFormat       = "audio-24khz-48kbitrate-mono-mp3"
	edgeOrigin             = "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold"
	edgeUserAgent          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"

	// Timestamp format the readaloud endpoint expects in message headers.
	edgeTimestampFormat = "Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)"
)

// EdgeProvider synthesizes speech through the Edge readaloud websocket
// endpoint. The endpoint streams typed chunks; all chunks on the audio path
// are collected into a single buffer before returning, so callers see one
// blocking call.
type EdgeProvider struct {
	dialer *websocket.Dialer
}

func NewEdgeProvider() *EdgeProvider {
	return &EdgeProvider{
		dialer: &websocket.Dialer{
			HandshakeTimeout: 15 * time.Second,
		},
	}
}

func (p *EdgeProvider) Name() string { return "edge" }

// Synthesize runs the neural stage. Languages without a mapped neural voice
// are skipped so the chain can fall through to the next provider.
func (p *EdgeProvider) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	voice, ok := ResolveNeuralVoice(req.LanguageCode)
	if !ok {
		return nil, nil
	}
	return p.stream(ctx, req.Text, voice)
}

func (p *EdgeProvider) stream(ctx context.Context, text, voice string) ([]byte, error) {
	connectionID := strings.ReplaceAll(uuid.NewString(), "-", "")

	header := http.Header{}
	header.Set("Origin", edgeOrigin)
	header.Set("User-Agent", edgeUserAgent)

	url := fmt.Sprintf("%s?TrustedClientToken=%s&ConnectionId=%s", edgeEndpoint, edgeTrustedClientToken, connectionID)
	conn, _, err := p.dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	timestamp := time.Now().UTC().Format(edgeTimestampFormat)

	configMsg := "X-Timestamp:" + timestamp + "\r\n" +
		"Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		`{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + edgeOutputFormat + `"}}}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(configMsg)); err != nil {
		return nil, fmt.Errorf("failed to send speech config: %w", err)
	}

	ssml := fmt.Sprintf(
		"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'><voice name='%s'>%s</voice></speak>",
		voice, html.EscapeString(text),
	)
	ssmlMsg := "X-RequestId:" + strings.ReplaceAll(uuid.NewString(), "-", "") + "\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"X-Timestamp:" + timestamp + "\r\n" +
		"Path:ssml\r\n\r\n" + ssml
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ssmlMsg)); err != nil {
		return nil, fmt.Errorf("failed to send ssml: %w", err)
	}

	var audio bytes.Buffer
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("stream read failed: %w", err)
		}

		switch msgType {
		case websocket.BinaryMessage:
			// Binary frames carry a 2-byte big-endian header length,
			// followed by the header block and the audio payload.
			if len(payload) < 2 {
				continue
			}
			headerLen := int(payload[0])<<8 | int(payload[1])
			if len(payload) < 2+headerLen {
				continue
			}
			if bytes.Contains(payload[2:2+headerLen], []byte("Path:audio")) {
				audio.Write(payload[2+headerLen:])
			}
		case websocket.TextMessage:
			if strings.Contains(string(payload), "Path:turn.end") {
				if audio.Len() == 0 {
					return nil, fmt.Errorf("stream ended without audio")
				}
				return audio.Bytes(), nil
			}
		}
	}
}
