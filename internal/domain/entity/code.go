package entity

import (
	"math/rand"
	"strconv"
)

// NewDisplayCode gera o código de exibição de 5 dígitos usado em vendas e
// compras (10000–99999). Colisões não são verificadas: o código é apenas para
// exibição e busca, a chave é o ID.
func NewDisplayCode() string {
	return strconv.Itoa(10000 + rand.Intn(90000))
}
