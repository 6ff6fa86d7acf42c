// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into PriceWise
// HTTP response bodies.
//
// The web front end matches on some of these strings, so they are part of the
// API.
package app

// Success messages.
const (
	MsgRegistered        = "User registered successfully"
	MsgLoggedIn          = "Login successful"
	MsgLoggedOut         = "Logout successful"
	MsgProfile           = "This is protected profile data"
	MsgTracked           = "Product tracked successfully, email sent"
	MsgTrackPriceUpdated = "Tracking price updated successfully"
	MsgUntracked         = "Product successfully untracked"

	// MsgNothingTracked accompanies an empty tracked product list.
	MsgNothingTracked = "No products are being tracked yet."
)

// Failure messages.
const (
	MsgInvalidJSON      = "Invalid JSON body"
	MsgInvalidOffset    = "Offset must be an integer"
	MsgInvalidData      = "Invalid request data"
	MsgInvalidPrice     = "Invalid price format"
	MsgInvalidID        = "Invalid identifier format"
	MsgOffsetOutOfRange = "Offset is outside the price history"
	MsgUserNotFound     = "User not found"
	MsgProductNotFound  = "Product not found"
	MsgTrackingNotFound = "Tracked data not found"
	MsgTrackedNotFound  = "Tracked product not found"
	MsgNoPriceHistory   = "Product has no price history"
	MsgEmailRegistered  = "Email already registered"
	MsgAlreadyTracked   = "Product already tracked"
	MsgNoToken          = "No token provided"
	MsgInvalidToken     = "Invalid token"
	MsgAccessDenied     = "Credential does not match the requested user"
	MsgEmailNotSent     = "Failed to send confirmation email"
	MsgPredictionDown   = "Price prediction is unavailable"
	MsgInternalError    = "Internal server error"

	// MsgInvalidCredentials is shared by unknown emails and wrong passwords.
	MsgInvalidCredentials = "Invalid email or password"
)
