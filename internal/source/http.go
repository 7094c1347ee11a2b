package source

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobradar/jobradar/internal/model"
)

// Some providers (RemoteOK, WeWorkRemotely, Jobspresso) reject requests
// without a browser User-Agent.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// getJSON performs a GET request and decodes the JSON response into out.
// Non-2xx statuses come back as *model.HTTPError.
func getJSON(req *http.Request, client *http.Client, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("GET %s: unexpected status %d", req.URL, resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", req.URL, err)
	}
	return nil
}
