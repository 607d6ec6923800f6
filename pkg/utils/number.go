package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CoerceNumber converte um valor de origem remota em float64.
// O banco gerenciado pode devolver números como string ou NULL, então todo
// mapeamento de resultado remoto deve passar por aqui.
// Regras: nil -> fallback; número finito -> inalterado; string -> parse
// (finito -> valor, senão fallback); string vazia ou só espaços -> 0, como
// na conversão numérica de string vazia; qualquer outro tipo -> fallback.
func CoerceNumber(value any, fallback float64) float64 {
	switch v := value.(type) {
	case nil:
		return fallback
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	case float32:
		return CoerceNumber(float64(v), fallback)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case []byte:
		return coerceNumericString(string(v), fallback)
	case string:
		return coerceNumericString(v, fallback)
	default:
		return fallback
	}
}

func coerceNumericString(s string, fallback float64) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fallback
	}
	return parsed
}

// CoerceBool converte um valor de origem remota em bool.
// Booleano nativo -> inalterado; número -> true se diferente de zero;
// string -> true apenas para "true", "t" ou "1" (sem diferenciar maiúsculas),
// qualquer outra string -> fallback; outros tipos -> fallback.
func CoerceBool(value any, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case []byte:
		return coerceBoolString(string(v), fallback)
	case string:
		return coerceBoolString(v, fallback)
	default:
		return fallback
	}
}

func coerceBoolString(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return true
	}
	return fallback
}

// FallbackLabel devolve um nome de exibição sintético ("Dealer 12", "Rep 7")
// quando o nome vindo do banco está vazio ou só contém espaços.
func FallbackLabel(name string, prefix string, id int64) string {
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("%s %d", prefix, id)
	}
	return name
}
