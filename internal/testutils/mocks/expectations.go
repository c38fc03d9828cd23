// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/testutils"
)

// ExpectFetch sets up the four sub-requests for id, each answering with
// bulbasaur's fixtures relabelled with id
func ExpectFetch(mockClient *pokeapimock.MockClient, id uint16) {
	ExpectFetchFailure(mockClient, id, "", nil)
}

// ExpectFetchFailure sets up the four sub-requests for id. The one named by
// failing returns failure instead of a payload.
func ExpectFetchFailure(mockClient *pokeapimock.MockClient, id uint16, failing pokeapi.Operation, failure error) {
	expectFetch(mockClient, id, id, failing, failure)
}

// ExpectMismatchedFetch sets up the four sub-requests for id, but the pokemon
// document describes payloadID
func ExpectMismatchedFetch(mockClient *pokeapimock.MockClient, id, payloadID uint16) {
	expectFetch(mockClient, id, payloadID, "", nil)
}

func expectFetch(mockClient *pokeapimock.MockClient, id, payloadID uint16, failing pokeapi.Operation, failure error) {
	var portraitErr, shinyErr, pokemonErr, speciesErr error
	switch failing {
	case pokeapi.OperationPortrait:
		portraitErr = failure
	case pokeapi.OperationShinyPortrait:
		shinyErr = failure
	case pokeapi.OperationPokemon:
		pokemonErr = failure
	case pokeapi.OperationSpecies:
		speciesErr = failure
	}

	portrait := testutils.TestPortrait
	if portraitErr != nil {
		portrait = nil
	}
	shiny := testutils.TestShinyPortrait
	if shinyErr != nil {
		shiny = nil
	}
	pokemon := testutils.CreateTestPokemonResponse()
	pokemon.ID = payloadID
	if pokemonErr != nil {
		pokemon = nil
	}
	species := testutils.CreateTestSpeciesResponse()
	if speciesErr != nil {
		species = nil
	}

	mockClient.EXPECT().GetSprite(gomock.Any(), id, pokeapi.SpriteNormal).Return(portrait, portraitErr)
	mockClient.EXPECT().GetSprite(gomock.Any(), id, pokeapi.SpriteShiny).Return(shiny, shinyErr)
	mockClient.EXPECT().GetPokemon(gomock.Any(), id).Return(pokemon, pokemonErr)
	mockClient.EXPECT().GetSpecies(gomock.Any(), id).Return(species, speciesErr)
}
