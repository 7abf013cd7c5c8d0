package classifier

import (
	"bytes"
	"context"
	"errors"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type remoteRequest struct {
	Instances []models.PremiumFeatures `json:"instances"`
}

type remoteResponse struct {
	Predictions []string `json:"predictions"`
}

// remoteClassifier calls a model server that hosts the trained artifact.
type remoteClassifier struct {
	URL        string
	HTTPClient *http.Client
}

func NewRemoteClassifier(url string, timeout time.Duration) contracts.Classifier {
	return &remoteClassifier{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *remoteClassifier) Predict(ctx context.Context, features models.PremiumFeatures) (string, error) {
	body, err := json.Marshal(remoteRequest{Instances: []models.PremiumFeatures{features}})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", exceptions.ErrClassifierRemoteStatus(nil, resp.StatusCode)
	}

	var result remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", exceptions.ErrClassifierPredict(err)
	}
	if len(result.Predictions) == 0 || result.Predictions[0] == "" {
		return "", exceptions.ErrClassifierPredict(errors.New("empty predictions"))
	}
	return result.Predictions[0], nil
}
