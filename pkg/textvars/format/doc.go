// Package format renders variable values for display.
//
// A value is rendered either by an explicit pipe directive taken from a
// placeholder such as {offerExpiry | formatDate} or, without a pipe, by the
// declared type of its definition:
//
//	currency    {symbol}{grouped amount}   $1,234 or $1,234.50
//	percentage  {number}%                  15%
//	date        date pattern               31 Dec 2025
//	number      grouped                    12,500
//	boolean     Yes / No
//	string      as is
//
// Pipe names are matched case-insensitively. Pipes may carry an argument
// after a colon, for example {offerExpiry | date:MMM D} or
// {productPrice | currency:€}.
//
// Formatting never fails outright. When a value cannot be rendered the way
// it was asked for, Format returns the value stringified together with an
// error describing the fallback.
package format
