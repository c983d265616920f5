/*
Package units implements exact value types for the integer encodings used by
smart contracts: token amounts scaled by 10^decimals, signed 64.64 fixed point
numbers, basis point percentages and durations in seconds.
It also provides a float wrapper that truncates like contract arithmetic does.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Exact conversion between decimal strings and raw integers
  - Arithmetic that fails instead of wrapping on overflow or division by zero
  - Truncation toward zero, matching integer division in contracts
  - JSON and msgpack encoding of raw values
  - Structured logging through zap object marshalers

# Representation

An [Amount] is a raw unsigned integer in [0, 2^256) and a number of decimals.
Its decimal value is raw / 10^decimals. Decimal strings are parsed into raw
integers without passing through a native float, so "0.1" with 18 decimals is
exactly 100000000000000000.

A [FixedX64] is a signed numerator over the implicit denominator 2^64.
A [Percentage] is a number of basis points, where 10000 basis points is 1.
A [Duration] is a whole number of seconds, see [YearInSeconds].
A [Floating] is a native float truncated to a number of decimals after every
operation.

# Raw Values

Values returned by a contract call are wrapped with the raw constructors
[NewAmount], [NewAmountFromString], [NewAmountFromUint256], [NewFixedX64],
[NewPercentage] and [NewDuration].
The String method of every type returns the raw integer, ready to be passed
back to a contract.

# Errors

Parsing and arithmetic return errors wrapping one of [ErrInvalidAmount],
[ErrSignRange], [ErrOutOfRange] or [ErrDivisionByZero]; use [errors.Is]
to check the kind. Truncation is not an error.
The Must constructors panic instead and are intended for initialization of
global variables.
*/
package units
