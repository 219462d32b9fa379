package observability

import "strconv"

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	// Llama 3 8B Instruct pricing
	llama38bInputPrice  = 0.0003
	llama38bOutputPrice = 0.0006

	// Llama 3 70B Instruct pricing
	llama370bInputPrice  = 0.00265
	llama370bOutputPrice = 0.0035
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for the Bedrock models we invoke
var PricingTable = map[string]ModelPricing{
	"meta.llama3-8b-instruct-v1:0": {
		InputPricePer1K:  llama38bInputPrice,
		OutputPricePer1K: llama38bOutputPrice,
	},
	"meta.llama3-70b-instruct-v1:0": {
		InputPricePer1K:  llama370bInputPrice,
		OutputPricePer1K: llama370bOutputPrice,
	},
}

// CalculateBedrockCost calculates the cost in USD for a Bedrock invocation
func CalculateBedrockCost(model string, promptTokens, generationTokens int) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		// Default to the 8B pricing if model not found
		pricing = PricingTable["meta.llama3-8b-instruct-v1:0"]
	}

	inputCost := (float64(promptTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(generationTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
