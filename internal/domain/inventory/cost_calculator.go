package inventory

import "github.com/shopspring/decimal"

// costScale decimales con los que se guarda el costo promedio.
const costScale = 4

// WeightedAverageCost recalcula el costo promedio ponderado tras una recepción.
// nuevo = (existencias*costoActual + recibido*costoRecibido) / (existencias + recibido)
// Con existencias no positivas el costo de la recepción reemplaza al actual.
func WeightedAverageCost(onHand, currentCost, received, receivedCost decimal.Decimal) decimal.Decimal {
	if !received.IsPositive() {
		return currentCost
	}
	if !onHand.IsPositive() {
		return receivedCost.Round(costScale)
	}
	num := onHand.Mul(currentCost).Add(received.Mul(receivedCost))
	return num.Div(onHand.Add(received)).Round(costScale)
}
