package registry

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Names of the contract entry points and events consumed by this client
const (
	MethodSubmitApplication       = "submitApplication"
	MethodGetApplication          = "getApplication"
	MethodGetUserApplications     = "getUserApplications"
	MethodUpdateApplicationStatus = "updateApplicationStatus"
	MethodGetTotalApplications    = "getTotalApplications"

	EventApplicationSubmitted = "ApplicationSubmitted"
	EventStatusUpdated        = "StatusUpdated"
)

// ABI of the TheaterRegistry contract. The contract itself is an external
// collaborator, deployed separately; only its interface is consumed here.
const theaterRegistryABI = `[
  {
    "type": "function",
    "name": "submitApplication",
    "stateMutability": "nonpayable",
    "inputs": [
      { "name": "userId", "type": "string" },
      { "name": "wallet", "type": "address" },
      { "name": "ipfsHash", "type": "string" }
    ],
    "outputs": [{ "name": "appId", "type": "string" }]
  },
  {
    "type": "function",
    "name": "getApplication",
    "stateMutability": "view",
    "inputs": [{ "name": "appId", "type": "string" }],
    "outputs": [
      { "name": "userId", "type": "string" },
      { "name": "wallet", "type": "address" },
      { "name": "ipfsHash", "type": "string" },
      { "name": "status", "type": "uint8" },
      { "name": "submissionTimestamp", "type": "uint256" },
      { "name": "lastUpdatedTimestamp", "type": "uint256" },
      { "name": "reviewNotes", "type": "string" },
      { "name": "isActive", "type": "bool" }
    ]
  },
  {
    "type": "function",
    "name": "getUserApplications",
    "stateMutability": "view",
    "inputs": [{ "name": "userId", "type": "string" }],
    "outputs": [
      {
        "name": "applications",
        "type": "tuple[]",
        "components": [
          { "name": "appId", "type": "string" },
          { "name": "userId", "type": "string" },
          { "name": "wallet", "type": "address" },
          { "name": "ipfsHash", "type": "string" },
          { "name": "status", "type": "uint8" },
          { "name": "submissionTimestamp", "type": "uint256" },
          { "name": "lastUpdatedTimestamp", "type": "uint256" },
          { "name": "reviewNotes", "type": "string" },
          { "name": "isActive", "type": "bool" }
        ]
      }
    ]
  },
  {
    "type": "function",
    "name": "updateApplicationStatus",
    "stateMutability": "nonpayable",
    "inputs": [
      { "name": "appId", "type": "string" },
      { "name": "newStatus", "type": "uint8" },
      { "name": "reviewNotes", "type": "string" }
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "getTotalApplications",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{ "name": "", "type": "uint256" }]
  },
  {
    "type": "event",
    "name": "ApplicationSubmitted",
    "anonymous": false,
    "inputs": [
      { "name": "appId", "type": "string", "indexed": false },
      { "name": "userId", "type": "string", "indexed": false },
      { "name": "wallet", "type": "address", "indexed": true },
      { "name": "ipfsHash", "type": "string", "indexed": false },
      { "name": "timestamp", "type": "uint256", "indexed": false }
    ]
  },
  {
    "type": "event",
    "name": "StatusUpdated",
    "anonymous": false,
    "inputs": [
      { "name": "appId", "type": "string", "indexed": false },
      { "name": "newStatus", "type": "uint8", "indexed": false },
      { "name": "reviewNotes", "type": "string", "indexed": false },
      { "name": "timestamp", "type": "uint256", "indexed": false }
    ]
  }
]`

func TheaterRegistryABI() (*abi.ABI, error) {
	contractABI, err := abi.JSON(strings.NewReader(theaterRegistryABI))
	if err != nil {
		return nil, err
	}
	return &contractABI, nil
}
