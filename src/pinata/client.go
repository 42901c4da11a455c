// Package pinata is a thin client for the pinning service the platform uses
// as its content-addressed blob store. Content hashes are the only keys;
// anything pinned is immutable by construction.
package pinata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/task"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var (
	// Upload was refused for a permanent reason (auth, quota, bad payload)
	ErrUploadRejected = errors.New("pinata: upload rejected")

	// Upload could not reach the service
	ErrUnreachable = errors.New("pinata: service unreachable")

	// The requested content hash is not served by the gateway
	ErrContentNotFound = errors.New("pinata: content not found")
)

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinOptions struct {
	CidVersion int `json:"cidVersion"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinJSONRequest struct {
	PinataOptions  pinOptions      `json:"pinataOptions"`
	PinataMetadata pinMetadata     `json:"pinataMetadata"`
	PinataContent  json.RawMessage `json:"pinataContent"`
}

// Client pins content and fetches it back through the public gateway
type Client struct {
	log    *logrus.Entry
	config *config.Pinata

	httpClient *resty.Client
}

func NewClient(cfg *config.Pinata) (self *Client) {
	self = new(Client)
	self.log = logger.NewSublogger("pinata")
	self.config = cfg

	self.httpClient = resty.New().
		SetBaseURL(cfg.ApiUrl).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.Jwt)

	return
}

// PinBytes uploads raw document bytes and returns their content hash.
// Transport errors and 5xx responses are retried with backoff, 4xx responses
// are permanent.
func (self *Client) PinBytes(ctx context.Context, name string, data []byte) (contentHash string, err error) {
	payload := pinJSONRequest{
		PinataOptions:  pinOptions{CidVersion: 0},
		PinataMetadata: pinMetadata{Name: name},
		PinataContent:  json.RawMessage(data),
	}

	var result pinResponse
	err = task.NewRetry().
		WithContext(ctx).
		WithMaxElapsedTime(self.config.MaxElapsedTime).
		WithMaxInterval(self.config.MaxInterval).
		WithOnError(func(err error, isDurationAcceptable bool) error {
			if errors.Is(err, ErrUploadRejected) || errors.Is(err, context.Canceled) {
				return task.Permanent(err)
			}
			self.log.WithError(err).WithField("name", name).Warn("Pin failed, retrying...")
			return err
		}).
		Run(func() (err error) {
			resp, err := self.httpClient.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				SetBody(&payload).
				SetResult(&result).
				Post("/pinning/pinJSONToIPFS")
			if err != nil {
				return errors.Join(ErrUnreachable, err)
			}
			if resp.IsError() {
				if resp.StatusCode() >= 500 {
					return fmt.Errorf("pinata: server error: %s", resp.Status())
				}
				return errors.Join(ErrUploadRejected, fmt.Errorf("pinata: %s: %s", resp.Status(), resp.String()))
			}
			return nil
		})
	if err != nil {
		return
	}

	if result.IpfsHash == "" {
		err = errors.Join(ErrUploadRejected, errors.New("pinata: response carries no content hash"))
		return
	}

	self.log.WithField("name", name).WithField("hash", result.IpfsHash).Debug("Content pinned")
	return result.IpfsHash, nil
}

// Fetch retrieves pinned bytes through the gateway URL template
// <gateway>/<contentHash>
func (self *Client) Fetch(ctx context.Context, contentHash string) (data []byte, err error) {
	resp, err := self.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(false).
		Get(fmt.Sprintf("%s/%s", self.config.GatewayUrl, contentHash))
	if err != nil {
		err = errors.Join(ErrUnreachable, err)
		return
	}
	if resp.StatusCode() == 404 {
		err = ErrContentNotFound
		return
	}
	if resp.IsError() {
		err = fmt.Errorf("pinata: gateway error: %s", resp.Status())
		return
	}

	return resp.Body(), nil
}
