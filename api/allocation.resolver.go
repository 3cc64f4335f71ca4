package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"portfoliosim/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type allocationResponse struct {
	TargetAllocationID uuid.UUID       `json:"targetAllocationID"`
	StockID            uuid.UUID       `json:"stockID"`
	Symbol             string          `json:"symbol"`
	Name               string          `json:"name"`
	TargetPercent      decimal.Decimal `json:"targetPercent"`
}

func toAllocationResponses(allocations []domain.Allocation) []allocationResponse {
	out := make([]allocationResponse, 0, len(allocations))
	for _, a := range allocations {
		out = append(out, allocationResponse{
			TargetAllocationID: a.TargetAllocationID,
			StockID:            a.StockID,
			Symbol:             a.Symbol,
			Name:               a.Name,
			TargetPercent:      a.TargetPercent,
		})
	}
	return out
}

func (m ApiHandler) listAllocations(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	allocations, err := m.AllocationService.ListAllocations(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toAllocationResponses(allocations))
}

// percentInput keeps a percent exactly as the client wrote it, whether it
// was sent as a JSON string or a number, so the allocation service can
// validate the text itself.
type percentInput string

func (p *percentInput) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = percentInput(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	*p = percentInput(b)
	return nil
}

// updateAllocationsRequest is keyed by target allocation id.
type updateAllocationsRequest struct {
	Allocations map[string]percentInput `json:"allocations"`
}

func (m ApiHandler) updateAllocations(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody updateAllocationsRequest
	if err := bindJSON(c, &requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	percents := make(map[uuid.UUID]string, len(requestBody.Allocations))
	for key, value := range requestBody.Allocations {
		allocationID, err := uuid.Parse(key)
		if err != nil {
			returnErrorJson(fmt.Errorf("%w: allocation key %q is not a valid id", domain.ErrInvalidInput, key), c)
			return
		}
		percents[allocationID] = string(value)
	}

	allocations, err := m.AllocationService.UpdateAllocations(c.Request.Context(), portfolioID, percents)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toAllocationResponses(allocations))
}
