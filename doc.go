/*
Package dicecore implements a tabletop-style dice-notation parser and
evaluator. Expressions such as "4d20 kh2 #cs #cf", "9d6!", or
"(2d6+2d10)!" are parsed into an expression tree and evaluated against a
pluggable Roller, producing an immutable RollResult tree with full
provenance of every die rolled, dropped, exploded, compounded, or
penetrated along the way.

# Dice Notation

Dice notation is an algebra-like system for indicating dice rolls in games.
A roll is usually given in the form AdX, where A is the number of X-sided
dice to roll; A may be omitted if it is 1, so "d20" means "1d20". Notation
can be combined with arithmetic (+, -, *), aggregated with parentheses, and
modified with drop/keep, clamp, sort, reroll, explode, compound, penetrate,
and counting operators. See Parse and Evaluator for the supported grammar.

The package performs no randomness itself beyond what a supplied Roller
implementation provides; RNGRoller, PreRolledRoller, and CallbackRoller
cover the cryptographically-random, replay, and asynchronous-callback
cases respectively.
*/
package dicecore
