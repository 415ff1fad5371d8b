package gochain

import "math"

// The bounded arithmetic unit. Every operation is a constant-time lookup
// against the engine's tier tables; the only logic is sign canonicalization,
// which inspects the second operand's sign -- never its magnitude -- so the
// tables need just one quadrant of sign combinations.

// Add returns a+b by table lookup. A negative second operand canonicalizes
// to subtraction of its magnitude.
func (eng *Engine) Add(a, b int64) (int64, error) {
	if b < 0 {
		if b == math.MinInt64 {
			return 0, rangeErr("Add", a, b)
		}
		return eng.Subtract(a, -b)
	}
	if v, ok := eng.tables().Add(a, b); ok {
		return v, nil
	}
	return 0, rangeErr("Add", a, b)
}

// Subtract returns a-b by table lookup. A negative second operand
// canonicalizes to addition of its magnitude.
func (eng *Engine) Subtract(a, b int64) (int64, error) {
	if b < 0 {
		if b == math.MinInt64 {
			return 0, rangeErr("Subtract", a, b)
		}
		return eng.Add(a, -b)
	}
	if v, ok := eng.tables().Sub(a, b); ok {
		return v, nil
	}
	return 0, rangeErr("Subtract", a, b)
}

// Negate returns the additive inverse of a. Negate(Negate(a)) == a for every
// representable a, zero included.
func (eng *Engine) Negate(a int64) (int64, error) {
	if v, ok := eng.tables().Neg(a); ok {
		return v, nil
	}
	return 0, rangeErr("Negate", a)
}

// Pow2 returns the value token for 2^n; negative n yields a fractional
// 1/2^k token.
func (eng *Engine) Pow2(n int) (Value, error) {
	if tok, ok := eng.tables().Pow2(n); ok {
		return Value{Token(tok)}, nil
	}
	return nil, rangeErr("Pow2", n)
}

// Log2 returns the exponent of a power-of-two value, negative for the
// fractional 1/2^k domain. Any other value is outside the table.
func (eng *Engine) Log2(v Value) (int64, error) {
	if n, ok := eng.tables().Log2(v.String()); ok {
		return int64(n), nil
	}
	return 0, rangeErr("Log2", v)
}

func directAdd(eng *Engine, args []Value) (Value, error) {
	a, b, err := binaryInts("Add", args)
	if err != nil {
		return nil, err
	}
	n, err := eng.Add(a, b)
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func directSubtract(eng *Engine, args []Value) (Value, error) {
	a, b, err := binaryInts("Subtract", args)
	if err != nil {
		return nil, err
	}
	n, err := eng.Subtract(a, b)
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func directNegate(eng *Engine, args []Value) (Value, error) {
	a, err := unaryInt("Negate", args)
	if err != nil {
		return nil, err
	}
	n, err := eng.Negate(a)
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func directLog2(eng *Engine, args []Value) (Value, error) {
	n, err := eng.Log2(args[0])
	if err != nil {
		return nil, err
	}
	return intValue(n), nil
}

func directPow2(eng *Engine, args []Value) (Value, error) {
	n, err := unaryInt("Pow2", args)
	if err != nil {
		return nil, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, rangeErr("Pow2", n)
	}
	return eng.Pow2(int(n))
}

func directIdentity(eng *Engine, args []Value) (Value, error) {
	return args[0], nil
}

func unaryInt(op string, args []Value) (int64, error) {
	a, err := args[0].Int()
	if err != nil {
		return 0, MalformedChainError{Op: op, Msg: "non-numeric operand " + args[0].String()}
	}
	return a, nil
}

func binaryInts(op string, args []Value) (int64, int64, error) {
	a, err := unaryInt(op, args[:1])
	if err != nil {
		return 0, 0, err
	}
	b, err := unaryInt(op, args[1:])
	return a, b, err
}
